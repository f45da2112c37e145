package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDateJSON(t *testing.T) {
	data, err := json.Marshal(NewDate(1937, time.September, 21))
	require.NoError(t, err)
	assert.Equal(t, `"1937-09-21"`, string(data))

	tests := []struct {
		name     string
		input    string
		expected Date
		wantErr  bool
	}{
		{name: "calendar day", input: `"1925-04-10"`, expected: NewDate(1925, time.April, 10)},
		{name: "timestamp keeps the day", input: `"1960-07-11T22:30:00-05:00"`, expected: NewDate(1960, time.July, 11)},
		{name: "empty is zero", input: `""`, expected: Date{}},
		{name: "garbage", input: `"next tuesday"`, wantErr: true},
		{name: "not a string", input: `1925`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d)
		})
	}
}

func TestDateYAML(t *testing.T) {
	var book Book
	require.NoError(t, yaml.Unmarshal([]byte("id: 3\npublish_date: 1937-09-21\n"), &book))
	assert.Equal(t, NewDate(1937, time.September, 21), book.PublishDate)

	data, err := yaml.Marshal(Book{PublishDate: NewDate(2001, time.February, 3)})
	require.NoError(t, err)
	assert.Contains(t, string(data), "2001-02-03")
}

func TestZeroDateString(t *testing.T) {
	assert.Empty(t, Date{}.String())
}

func TestNewDraft(t *testing.T) {
	for range 100 {
		draft := NewDraft()
		assert.GreaterOrEqual(t, draft.ID, 1)
		assert.LessOrEqual(t, draft.ID, maxDraftID)
		assert.Empty(t, draft.Title)
		assert.Zero(t, draft.Stock)
		assert.Equal(t, Today(), draft.PublishDate)
	}
}

func TestSampleBooks(t *testing.T) {
	books := SampleBooks()

	require.Len(t, books, 5)
	stocks := make([]int, 0, len(books))
	for _, b := range books {
		stocks = append(stocks, b.Stock)
	}
	assert.Equal(t, []int{5, 3, 7, 0, 0}, stocks)

	books[0].Title = "changed"
	assert.Equal(t, "The Great Gatsby", SampleBooks()[0].Title)
}
