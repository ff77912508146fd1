package viz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/ardusim/internal/frames"
)

const ruleWidth = 48

// Renderer formats frames. A plain renderer emits no escape codes.
type Renderer struct {
	plain bool
}

func NewRenderer(color bool) *Renderer {
	return &Renderer{plain: !color}
}

func (r *Renderer) style(s lipgloss.Style) lipgloss.Style {
	if r.plain {
		return lipgloss.NewStyle()
	}
	return s
}

func (r *Renderer) Frame(f frames.ArduinoFrame) string {
	var b strings.Builder

	title := fmt.Sprintf("frame %d  %s", f.FrameNumber, f.BlockName)
	if f.BlockID != "" {
		title += fmt.Sprintf(" (%s)", f.BlockID)
	}
	b.WriteString(r.style(HeaderStyle).Render(title))
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s %s  iteration %d",
		r.style(MetricLabel).Render("timeline"),
		f.TimeLine.Function, f.TimeLine.Iteration)
	if f.Delay > 0 {
		fmt.Fprintf(&b, "  %s %s", r.style(MetricLabel).Render("delay"), r.style(MetricValue).Render(fmt.Sprintf("%dms", f.Delay)))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s  %s  %s\n", r.led("PWR", f.PowerLedOn), r.led("TX", f.TxLedOn), r.led("L", f.BuiltInLedOn))

	if f.Explanation != "" {
		b.WriteString(r.style(Explanation).Render(f.Explanation))
		b.WriteString("\n")
	}

	if len(f.Variables) > 0 {
		b.WriteString(r.style(Subtle).Render("variables"))
		b.WriteString("\n")
		names := make([]string, 0, len(f.Variables))
		for name := range f.Variables {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			v := f.Variables[name]
			fmt.Fprintf(&b, "  %s = %s\n", r.style(MetricLabel).Render(name), r.style(MetricValue).Render(frames.FormatValue(v.Value, v.Type)))
		}
	}

	if len(f.Components) > 0 {
		b.WriteString(r.style(Subtle).Render("components"))
		b.WriteString("\n")
		for _, c := range f.Components {
			fmt.Fprintf(&b, "  %s %s\n", r.style(MetricLabel).Render(frames.ComponentID(c)), r.component(c))
		}
	}

	return b.String()
}

// Frames renders a whole run separated by rules.
func (r *Renderer) Frames(history []frames.ArduinoFrame) string {
	parts := make([]string, 0, len(history))
	for _, f := range history {
		parts = append(parts, r.Frame(f))
	}
	return strings.Join(parts, r.style(Subtle).Render(Separator(ruleWidth))+"\n")
}

func (r *Renderer) led(label string, on bool) string {
	if on {
		return r.style(LedOn).Render("● " + label)
	}
	return r.style(LedOff).Render("○ " + label)
}

func (r *Renderer) swatch(c frames.Color) string {
	text := fmt.Sprintf("(red=%d,green=%d,blue=%d)", c.Red, c.Green, c.Blue)
	if r.plain {
		return text
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(c.Red, c.Green, c.Blue))).Render("■ ") + text
}

func (r *Renderer) component(c frames.ComponentState) string {
	switch s := c.(type) {
	case frames.LedState:
		return r.led(fmt.Sprintf("intensity %d", s.Intensity), s.On())
	case frames.RgbLedState:
		return r.swatch(s.Color)
	case frames.ServoState:
		return fmt.Sprintf("%d°", s.Degree)
	case frames.LcdState:
		rows := make([]string, len(s.Rows))
		for i, row := range s.Rows {
			rows[i] = fmt.Sprintf("[%s]", row)
		}
		text := strings.Join(rows, " ")
		if !s.Backlight {
			text += " backlight off"
		}
		if s.Blink {
			text += " blink"
		}
		return text
	case frames.NeoPixelState:
		pixels := make([]string, len(s.Pixels))
		for i, p := range s.Pixels {
			pixels[i] = r.swatch(p)
		}
		return strings.Join(pixels, " ")
	default:
		return fmt.Sprintf("%+v", c)
	}
}
