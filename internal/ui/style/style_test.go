package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/mountbar/internal/ui/style"
)

func TestMountIcon(t *testing.T) {
	assert.Equal(t, style.Dot, style.MountIcon(true))
	assert.Equal(t, style.Circle, style.MountIcon(false))
	assert.Equal(t, style.Green, style.MountColor(true))
	assert.Equal(t, style.Slate, style.MountColor(false))
}
