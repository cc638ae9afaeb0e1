package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClosest(t *testing.T) {
	assert.Equal(t, "hostname", Closest("hstname", []string{"hostname", "port", "region"}))
	assert.Equal(t, "", Closest("zzzzz", []string{"hostname", "port", "region"}))
	assert.Equal(t, "", Closest("anything", nil))
}
