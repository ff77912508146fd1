package frames

import (
	"encoding/json"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/ardusim/internal/blockly"
)

var _ = Describe("components", func() {
	It("derives ids from type and sorted pins", func() {
		rgb := RgbLedState{RedPin: "11", GreenPin: "10", BluePin: "9"}
		Expect(ComponentID(rgb)).To(Equal("RGB_LED-10-11-9"))
		Expect(rgb.RedPin).To(Equal("11"))

		Expect(ComponentID(LedState{Pin: "13"})).To(Equal("LED-13"))
		Expect(ComponentID(LedState{Pin: "13"})).NotTo(Equal(ComponentID(ServoState{Pin: "13"})))
	})

	It("parses type names loosely", func() {
		for name, want := range map[string]ComponentType{
			"led":      ComponentLed,
			"rgb-led":  ComponentRgbLed,
			"Servo":    ComponentServo,
			"lcd":      ComponentLcd,
			"neopixel": ComponentNeoPixel,
		} {
			got, err := ParseComponentType(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		}

		_, err := ParseComponentType("flux_capacitor")
		Expect(errors.Is(err, ErrUnknownComponent)).To(BeTrue())
	})

	It("decodes components from yaml", func() {
		var node yaml.Node
		Expect(yaml.Unmarshal([]byte("type: lcd\nsda_pin: A4\nscl_pin: A5\nrows: [hello, world]\nbacklight: true\n"), &node)).To(Succeed())

		c, err := DecodeComponentYAML(node.Content[0])
		Expect(err).NotTo(HaveOccurred())
		Expect(c).To(Equal(LcdState{SdaPin: "A4", SclPin: "A5", Rows: []string{"hello", "world"}, Backlight: true}))
	})

	It("round-trips frames through json", func() {
		f := ByVariable("b1", "set", loop1, Variable{Name: "c", Type: blockly.Colour, Value: Color{Red: 1, Green: 2, Blue: 3}}, "", Options{})
		f = ByComponent("b2", "led", loop1, LedState{Pin: "13", Intensity: 255}, "", Options{Previous: &f})
		f = ByComponent("b3", "strip", loop1, NeoPixelState{Pin: "6", Pixels: []Color{{Green: 9}}}, "", Options{Previous: &f, BuiltInLedOn: true})

		data, err := json.Marshal(f)
		Expect(err).NotTo(HaveOccurred())

		var back ArduinoFrame
		Expect(json.Unmarshal(data, &back)).To(Succeed())
		Expect(back.FrameNumber).To(Equal(3))
		Expect(back.BuiltInLedOn).To(BeTrue())
		Expect(back.Components).To(Equal(f.Components))
		Expect(back.Variables["c"].Value).To(Equal(Color{Red: 1, Green: 2, Blue: 3}))

		led, ok := back.Component("LED-13")
		Expect(ok).To(BeTrue())
		Expect(led.(LedState).On()).To(BeTrue())
	})

	It("rejects unknown component envelopes", func() {
		var f ArduinoFrame
		err := json.Unmarshal([]byte(`{"frameNumber":1,"components":[{"type":"WARP_DRIVE","state":{}}]}`), &f)
		Expect(errors.Is(err, ErrUnknownComponent)).To(BeTrue())
	})
})
