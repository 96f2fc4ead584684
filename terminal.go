package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rtrace/go-ray-forest/pkg/math"
	"github.com/rtrace/go-ray-forest/pkg/renderer"
	"github.com/rtrace/go-ray-forest/pkg/scene"
)

// drawToTerminal renders a small preview and prints it with half-block
// characters, packing two image rows into each terminal row.
func drawToTerminal(sc *scene.Scene, depth int) {
	const xRes, yRes = 100, 50

	camera := renderer.NewCamera(xRes, yRes)
	rt := renderer.NewRaytracer(sc, camera, depth)
	buffer := renderer.NewRenderBuffer(xRes, yRes)
	rt.Render(buffer)

	var sb strings.Builder
	for v := 0; v+1 < yRes; v += 2 {
		for u := 0; u < xRes; u++ {
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexColor(buffer.At(u, v)))).
				Background(lipgloss.Color(hexColor(buffer.At(u, v+1))))
			sb.WriteString(style.Render("▀"))
		}
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())
}

func hexColor(c math.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", channelByte(c.R), channelByte(c.G), channelByte(c.B))
}

func channelByte(f float64) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(f * 255)
}
