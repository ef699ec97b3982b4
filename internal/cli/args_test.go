/*
File    : jcjl/internal/cli/args_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package cli

import (
	"testing"

	"github.com/akashmaji946/jcjl/internal/value"
	"github.com/stretchr/testify/assert"
)

func TestParseArgLiterals(t *testing.T) {
	got := ParseArgLiterals([]string{"true", "false", "5", "-7", "0xFF", "hello", "True"})

	assert.Equal(t, value.NewBool(true), got[0])
	assert.Equal(t, value.NewBool(false), got[1])
	assert.Equal(t, value.NewInt(5), got[2])
	assert.Equal(t, value.NewInt(-7), got[3])
	assert.Equal(t, value.NewInt(255), got[4])
	assert.Equal(t, value.NewString(`"hello"`), got[5])
	// "True" is not the lowercase keyword, so it falls through to string.
	assert.Equal(t, value.NewString(`"True"`), got[6])
}

func TestParseArgLiterals_Empty(t *testing.T) {
	assert.Empty(t, ParseArgLiterals(nil))
}
