package keygen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_PrefijoYUnicidad(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		k := New(PrefixPart)
		assert.True(t, strings.HasPrefix(k, "PRT-"), k)
		_, dup := seen[k]
		assert.False(t, dup, "clave duplicada: %s", k)
		seen[k] = struct{}{}
	}
}

func TestNew_OrdenCronologico(t *testing.T) {
	a := New(PrefixCustomerService)
	b := New(PrefixCustomerService)
	assert.Less(t, a, b, "las claves v7 deben crecer con el tiempo")
}
