package frames

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ardusim/internal/blockly"
)

var loop1 = Timeline{Function: Loop, Iteration: 1}

func numberVar(name string, value float64) Variable {
	return Variable{Name: name, Type: blockly.Number, Value: value}
}

var _ = Describe("frame builders", func() {
	builders := []struct {
		name  string
		build func(prev *ArduinoFrame) ArduinoFrame
	}{
		{"by component", func(prev *ArduinoFrame) ArduinoFrame {
			return ByComponent("b", "digital_write", loop1, LedState{Pin: "13", Intensity: 255}, "led on", Options{Previous: prev})
		}},
		{"by explanation", func(prev *ArduinoFrame) ArduinoFrame {
			return ByExplanation("b", "loop", loop1, "entering the loop", Options{Previous: prev})
		}},
		{"by variable", func(prev *ArduinoFrame) ArduinoFrame {
			return ByVariable("b", "variables_set", loop1, numberVar("x", 1), "x = 1", Options{Previous: prev})
		}},
	}

	for _, b := range builders {
		build := b.build
		Context(b.name, func() {
			It("starts numbering at 1 with empty state", func() {
				f := ByExplanation("b0", "setup", Timeline{Function: Setup}, "start", Options{})
				Expect(f.FrameNumber).To(Equal(1))
				Expect(f.Variables).To(BeEmpty())
				Expect(f.Components).To(BeEmpty())

				first := build(nil)
				Expect(first.FrameNumber).To(Equal(1))
				Expect(first.PowerLedOn).To(BeTrue())
				Expect(first.SendMessage).To(BeEmpty())
			})

			It("increments the predecessor's frame number", func() {
				prev := ByExplanation("b0", "setup", Timeline{Function: Setup}, "start", Options{})
				prev.FrameNumber = 41
				Expect(build(&prev).FrameNumber).To(Equal(42))
			})

			It("never shares containers with the previous frame", func() {
				prev := ByVariable("b0", "variables_set", loop1, numberVar("y", 2), "", Options{})
				prev = ByComponent("b1", "lcd", loop1, LcdState{SdaPin: "A4", SclPin: "A5", Rows: []string{"hi", ""}}, "", Options{Previous: &prev})

				f := build(&prev)
				f.Variables["y"] = numberVar("y", 99)
				f.Variables["z"] = numberVar("z", 1)
				f.Components = append(f.Components, ServoState{Pin: "9"})
				for _, c := range f.Components {
					if lcd, ok := c.(LcdState); ok {
						lcd.Rows[0] = "changed"
					}
				}

				Expect(prev.Variables).To(HaveLen(1))
				Expect(prev.Variables["y"].Value).To(Equal(2.0))
				Expect(prev.Components).To(HaveLen(1))
				Expect(prev.Components[0].(LcdState).Rows[0]).To(Equal("hi"))
			})
		})
	}

	It("copies options and arguments verbatim", func() {
		tl := Timeline{Function: Loop, Iteration: 3}
		f := ByExplanation("b7", "delay", tl, "waiting", Options{TxLedOn: true, BuiltInLedOn: true, Delay: 500})
		Expect(f.BlockID).To(Equal("b7"))
		Expect(f.BlockName).To(Equal("delay"))
		Expect(f.TimeLine).To(Equal(tl))
		Expect(f.Explanation).To(Equal("waiting"))
		Expect(f.TxLedOn).To(BeTrue())
		Expect(f.BuiltInLedOn).To(BeTrue())
		Expect(f.Delay).To(Equal(500))
	})

	It("does not inherit LED flags or delay from the previous frame", func() {
		prev := ByExplanation("b0", "serial_print", loop1, "", Options{TxLedOn: true, Delay: 10})
		f := ByExplanation("b1", "next", loop1, "", Options{Previous: &prev})
		Expect(f.TxLedOn).To(BeFalse())
		Expect(f.Delay).To(BeZero())
	})

	Describe("ByComponent", func() {
		It("keeps one entry per component, newest wins", func() {
			f1 := ByComponent("b1", "led", loop1, LedState{Pin: "13", Intensity: 255}, "on", Options{})
			f2 := ByComponent("b2", "led", loop1, LedState{Pin: "13", Intensity: 0}, "off", Options{Previous: &f1})

			Expect(f2.Components).To(HaveLen(1))
			Expect(f2.Components[0]).To(Equal(LedState{Pin: "13", Intensity: 0}))
			Expect(f1.Components[0]).To(Equal(LedState{Pin: "13", Intensity: 255}))
		})

		It("appends new components and moves updated ones to the end", func() {
			f := ByComponent("b1", "led", loop1, LedState{Pin: "13", Intensity: 255}, "", Options{})
			f = ByComponent("b2", "servo", loop1, ServoState{Pin: "9", Degree: 90}, "", Options{Previous: &f})
			f = ByComponent("b3", "rgb", loop1, RgbLedState{RedPin: "11", GreenPin: "10", BluePin: "9"}, "", Options{Previous: &f})

			Expect(f.Components).To(HaveLen(3))
			Expect(f.Components[0].Type()).To(Equal(ComponentLed))
			Expect(f.Components[1].Type()).To(Equal(ComponentServo))
			Expect(f.Components[2].Type()).To(Equal(ComponentRgbLed))

			f = ByComponent("b4", "led", loop1, LedState{Pin: "13", Intensity: 10}, "", Options{Previous: &f})
			Expect(f.Components).To(HaveLen(3))
			Expect(f.Components[0].Type()).To(Equal(ComponentServo))
			Expect(f.Components[1].Type()).To(Equal(ComponentRgbLed))
			Expect(f.Components[2]).To(Equal(LedState{Pin: "13", Intensity: 10}))
		})

		It("ignores a nil component", func() {
			f1 := ByComponent("b1", "led", loop1, LedState{Pin: "13", Intensity: 255}, "", Options{})
			f2 := ByComponent("b2", "unknown", loop1, nil, "nothing to attach", Options{Previous: &f1})
			Expect(f2.FrameNumber).To(Equal(2))
			Expect(f2.Components).To(Equal(f1.Components))
		})

		It("does not alias the component passed in", func() {
			strip := NeoPixelState{Pin: "6", Pixels: []Color{{Red: 1}}}
			f := ByComponent("b1", "neopixel", loop1, strip, "", Options{})
			strip.Pixels[0].Red = 200
			Expect(f.Components[0].(NeoPixelState).Pixels[0].Red).To(Equal(1))
		})
	})

	Describe("ByVariable", func() {
		It("overwrites by name", func() {
			f := ByVariable("b1", "set", loop1, numberVar("x", 1), "", Options{})
			f = ByVariable("b2", "set", loop1, numberVar("y", 2), "", Options{Previous: &f})
			f = ByVariable("b3", "set", loop1, numberVar("x", 3), "", Options{Previous: &f})

			Expect(f.Variables).To(HaveLen(2))
			Expect(f.Variables["x"].Value).To(Equal(3.0))
			Expect(f.Variables["y"].Value).To(Equal(2.0))
			Expect(f.FrameNumber).To(Equal(3))
		})

		It("deep copies composite values", func() {
			colors := []Color{{Red: 5}}
			f1 := ByVariable("b1", "set", loop1, Variable{Name: "c", Type: blockly.ListColour, Value: colors}, "", Options{})
			f2 := ByVariable("b2", "set", loop1, numberVar("n", 1), "", Options{Previous: &f1})

			f2.Variables["c"].Value.([]Color)[0].Red = 99
			colors[0].Red = 77
			Expect(f1.Variables["c"].Value.([]Color)[0].Red).To(Equal(5))
		})

		It("deep copies values of any composite type", func() {
			type reading struct {
				Pins    []string
				Samples map[string]int
			}
			f1 := ByVariable("b1", "set", loop1, Variable{Name: "l", Value: []int{1, 2}}, "", Options{})
			f1 = ByVariable("b2", "set", loop1, Variable{Name: "m", Value: map[string]int{"red": 1}}, "", Options{Previous: &f1})
			f1 = ByVariable("b3", "set", loop1, Variable{Name: "r", Value: &reading{Pins: []string{"A0"}, Samples: map[string]int{"A0": 3}}}, "", Options{Previous: &f1})
			f2 := ByExplanation("b4", "wait", loop1, "", Options{Previous: &f1})

			f2.Variables["l"].Value.([]int)[0] = 99
			f2.Variables["m"].Value.(map[string]int)["red"] = 99
			r := f2.Variables["r"].Value.(*reading)
			r.Pins[0] = "A5"
			r.Samples["A0"] = 99

			Expect(f1.Variables["l"].Value).To(Equal([]int{1, 2}))
			Expect(f1.Variables["m"].Value).To(Equal(map[string]int{"red": 1}))
			Expect(f1.Variables["r"].Value).To(Equal(&reading{Pins: []string{"A0"}, Samples: map[string]int{"A0": 3}}))
		})
	})
})
