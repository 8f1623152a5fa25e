package components

import (
	"github.com/Rorical/ContentAnalyzer/ui/styles"
)

const inputPrompt = "path> "

func RenderInput(input string, width int) string {
	inputStyle := styles.InputStyle(width)
	return inputStyle.Render(inputPrompt + input)
}
