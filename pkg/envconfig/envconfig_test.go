package envconfig

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	t.Setenv("CATALOG_TEST_STR", "")
	assert.Equal(t, "fallback", String("CATALOG_TEST_STR", "fallback"))

	t.Setenv("CATALOG_TEST_STR", "value")
	assert.Equal(t, "value", String("CATALOG_TEST_STR", "fallback"))
}

func TestIntAndFloat(t *testing.T) {
	t.Setenv("CATALOG_TEST_NUM", "42")
	assert.Equal(t, 42, Int("CATALOG_TEST_NUM", 1))
	assert.Equal(t, 42.0, Float("CATALOG_TEST_NUM", 1))

	t.Setenv("CATALOG_TEST_NUM", "not-a-number")
	assert.Equal(t, 1, Int("CATALOG_TEST_NUM", 1))
	assert.Equal(t, 2.5, Float("CATALOG_TEST_NUM", 2.5))
}

func TestDuration(t *testing.T) {
	t.Setenv("CATALOG_TEST_DUR", "250ms")
	assert.Equal(t, 250*time.Millisecond, Duration("CATALOG_TEST_DUR", time.Second))

	t.Setenv("CATALOG_TEST_DUR", "soon")
	assert.Equal(t, time.Second, Duration("CATALOG_TEST_DUR", time.Second))
}

func TestList(t *testing.T) {
	t.Setenv("CATALOG_TEST_LIST", "")
	assert.Nil(t, List("CATALOG_TEST_LIST"))

	t.Setenv("CATALOG_TEST_LIST", "localhost:9092, localhost:9093,,")
	assert.Equal(t, []string{"localhost:9092", "localhost:9093"}, List("CATALOG_TEST_LIST"))
}
