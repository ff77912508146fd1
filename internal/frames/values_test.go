package frames

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ardusim/internal/blockly"
)

var _ = Describe("value helpers", func() {
	DescribeTable("DefaultValue",
		func(t blockly.VariableType, want any) {
			Expect(DefaultValue(t)).To(Equal(want))
		},
		Entry("colour", blockly.Colour, Color{}),
		Entry("string", blockly.String, ""),
		Entry("boolean", blockly.Boolean, false),
		Entry("number", blockly.Number, 0.0),
	)

	It("has no default for other types", func() {
		Expect(DefaultValue(blockly.ListNumber)).To(BeNil())
		Expect(DefaultValue(blockly.VariableType("Matrix"))).To(BeNil())
	})

	DescribeTable("ValueToString",
		func(value any, t blockly.VariableType, want any) {
			Expect(ValueToString(value, t)).To(Equal(want))
		},
		Entry("colour", Color{Red: 10, Green: 20, Blue: 30}, blockly.Colour, "(red=10,green=20,blue=30)"),
		Entry("colour pointer", &Color{Red: 1, Green: 2, Blue: 3}, blockly.Colour, "(red=1,green=2,blue=3)"),
		Entry("decoded colour map", map[string]any{"red": 7, "green": 8.0, "blue": 9}, blockly.Colour, "(red=7,green=8,blue=9)"),
		Entry("missing colour", nil, blockly.Colour, "(red=0,green=0,blue=0)"),
		Entry("nil colour pointer", (*Color)(nil), blockly.Colour, "(red=0,green=0,blue=0)"),
		Entry("zero number as colour", 0, blockly.Colour, "(red=0,green=0,blue=0)"),
		Entry("string", "hi", blockly.String, `"hi"`),
		Entry("empty string", "", blockly.String, `""`),
		Entry("missing string", nil, blockly.String, `"undefined"`),
		Entry("number passes through", 3.5, blockly.Number, 3.5),
		Entry("boolean passes through", true, blockly.Boolean, true),
		Entry("unknown type passes through", []int{1}, blockly.VariableType("Matrix"), []int{1}),
	)

	It("formats pass-through values as text", func() {
		Expect(FormatValue(true, blockly.Boolean)).To(Equal("true"))
		Expect(FormatValue(2.5, blockly.Number)).To(Equal("2.5"))
	})
})
