package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-yourage/internal/engine"
)

func TestDecodeQuery_Example(t *testing.T) {
	got := engine.DecodeQuery("?name=Ada&birthday=1815-12-10")

	assert.Equal(t, engine.QueryParams{
		Name:     "Ada",
		Birthday: engine.Date{Year: 1815, Month: time.December, Day: 10},
	}, got)
}

func TestQuery_Omission(t *testing.T) {
	assert.Equal(t, "", engine.EncodeQuery(engine.QueryParams{}))
	assert.Equal(t, engine.QueryParams{}, engine.DecodeQuery(""))
	assert.Equal(t, engine.QueryParams{}, engine.DecodeQuery("?"))

	onlyName := engine.EncodeQuery(engine.QueryParams{Name: "Bob"})
	assert.Equal(t, "name=Bob", onlyName)

	onlyBirthday := engine.EncodeQuery(engine.QueryParams{Birthday: engine.Date{Year: 2001, Month: time.February, Day: 3}})
	assert.Equal(t, "birthday=2001-02-03", onlyBirthday)
}

func TestDecodeQuery_LeadingQuestionMark(t *testing.T) {
	assert.Equal(t, engine.DecodeQuery("name=Bob"), engine.DecodeQuery("?name=Bob"))
	assert.Equal(t, "Bob", engine.DecodeQuery("?name=Bob").Name)
}

func TestDecodeQuery_AnyOrder(t *testing.T) {
	a := engine.DecodeQuery("birthday=1990-06-15&name=Ada")
	b := engine.DecodeQuery("name=Ada&birthday=1990-06-15")
	assert.Equal(t, a, b)
}

func TestDecodeQuery_BadBirthdayIsAbsent(t *testing.T) {
	tests := []string{
		"name=Ada&birthday=",
		"name=Ada&birthday=yesterday",
		"name=Ada&birthday=1990-02-30",
		"name=Ada&birthday=15%2F06%2F1990",
	}

	for _, q := range tests {
		t.Run(q, func(t *testing.T) {
			got := engine.DecodeQuery(q)
			assert.Equal(t, "Ada", got.Name)
			assert.True(t, got.Birthday.IsZero())
		})
	}
}

func TestDecodeQuery_MalformedEscapeKeepsValidPairs(t *testing.T) {
	got := engine.DecodeQuery("name=Ada&junk=%zz&birthday=1990-06-15")

	assert.Equal(t, "Ada", got.Name)
	assert.Equal(t, "1990-06-15", got.Birthday.String())
}

func TestQuery_RoundTrip(t *testing.T) {
	tests := []engine.QueryParams{
		{},
		{Name: "Ada"},
		{Birthday: engine.Date{Year: 1815, Month: time.December, Day: 10}},
		{Name: "Ada Lovelace", Birthday: engine.Date{Year: 1815, Month: time.December, Day: 10}},
		{Name: "Zoë & Åsa", Birthday: engine.Date{Year: 2000, Month: time.February, Day: 29}},
		{Name: "a=b?c#d+e%f", Birthday: engine.Date{Year: 1, Month: time.January, Day: 1}},
		{Name: "名前", Birthday: engine.Date{Year: 9999, Month: time.December, Day: 31}},
	}

	for _, p := range tests {
		t.Run(p.Name+"|"+p.Birthday.String(), func(t *testing.T) {
			encoded := engine.EncodeQuery(p)
			assert.NotContains(t, encoded, "?", "encoding carries no leading separator")
			assert.Equal(t, p, engine.DecodeQuery(encoded))
			assert.Equal(t, p, engine.DecodeQuery("?"+encoded))
		})
	}
}
