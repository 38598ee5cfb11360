package samples

import (
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	assert.Equal(t, nil, err)

	list := c.List()
	assert.Equal(t, 3, len(list))
	assert.Equal(t, "Florida Man Arrested for Attempting to Run to London in a Hamster Wheel", list[0].Title)
	assert.Equal(t, "Government to Ban Rain on Weekends", list[1].Title)
	assert.Equal(t, "Miracle Cure Found for Baldness", list[2].Title)

	for _, s := range list {
		assert.NotEqual(t, "", s.Body)
		assert.Equal(t, false, strings.Contains(s.Body, "\n"))
	}
}

func TestGet(t *testing.T) {
	c, err := Default()
	assert.Equal(t, nil, err)

	s, ok := c.Get("  Miracle Cure Found for Baldness ")
	assert.Equal(t, true, ok)
	assert.Equal(t, true, strings.HasPrefix(s.Body, "Scientists at a small university"))

	_, ok = c.Get(Placeholder)
	assert.Equal(t, false, ok)
}

func TestParse_Duplicate(t *testing.T) {
	data := []byte("- title: A\n  body: one\n- title: A\n  body: two\n")

	_, err := Parse(data)
	assert.NotEqual(t, nil, err)
}

func TestList_ReturnsCopy(t *testing.T) {
	c, err := Parse([]byte("- title: A\n  body: one\n"))
	assert.Equal(t, nil, err)

	list := c.List()
	list[0].Title = "changed"

	assert.Equal(t, "A", c.List()[0].Title)
}
