package script

import (
	"fmt"
	"sort"
)

var Presets = map[string]string{
	"blink": `name: blink
description: toggles the led on pin 13 twice
steps:
  - block_id: setup
    block_name: arduino_setup
    timeline: {function: setup, iteration: 0}
    explanation: "Setting up the board"
  - block_id: led_on
    block_name: digital_write
    timeline: {function: loop, iteration: 1}
    explanation: "Turning led 13 on"
    built_in_led: true
    component: {type: led, pin: "13", intensity: 255}
  - block_id: wait_on
    block_name: time_delay
    timeline: {function: loop, iteration: 1}
    explanation: "Waiting 1 second"
    built_in_led: true
    delay: 1000
  - block_id: led_off
    block_name: digital_write
    timeline: {function: loop, iteration: 1}
    explanation: "Turning led 13 off"
    component: {type: led, pin: "13", intensity: 0}
  - block_id: wait_off
    block_name: time_delay
    timeline: {function: loop, iteration: 1}
    explanation: "Waiting 1 second"
    delay: 1000
  - block_id: led_on
    block_name: digital_write
    timeline: {function: loop, iteration: 2}
    explanation: "Turning led 13 on"
    built_in_led: true
    component: {type: led, pin: "13", intensity: 255}
  - block_id: wait_on
    block_name: time_delay
    timeline: {function: loop, iteration: 2}
    explanation: "Waiting 1 second"
    built_in_led: true
    delay: 1000
`,
	"counter": `name: counter
description: counts to three and prints over serial
steps:
  - block_id: declare
    block_name: variables_set
    timeline: {function: setup, iteration: 0}
    explanation: "Setting count to 0"
    variable: {name: count, type: Number}
  - block_id: inc
    block_name: variables_set
    timeline: {function: loop, iteration: 1}
    explanation: "Setting count to 1"
    variable: {name: count, type: Number, value: 1}
  - block_id: print
    block_name: message
    timeline: {function: loop, iteration: 1}
    explanation: "Printing count"
    tx_led: true
  - block_id: inc
    block_name: variables_set
    timeline: {function: loop, iteration: 2}
    explanation: "Setting count to 2"
    variable: {name: count, type: Number, value: 2}
  - block_id: print
    block_name: message
    timeline: {function: loop, iteration: 2}
    explanation: "Printing count"
    tx_led: true
  - block_id: inc
    block_name: variables_set
    timeline: {function: loop, iteration: 3}
    explanation: "Setting count to 3"
    variable: {name: count, type: Number, value: 3}
`,
	"mood_light": `name: mood_light
description: drives an rgb led, a neopixel strip and an lcd from a colour variable
steps:
  - block_id: pick
    block_name: variables_set
    timeline: {function: setup, iteration: 0}
    explanation: "Setting mood to purple"
    variable: {name: mood, type: Colour, value: {red: 120, green: 0, blue: 200}}
  - block_id: rgb
    block_name: rgb_led_setup
    timeline: {function: setup, iteration: 0}
    explanation: "Setting the rgb led to purple"
    component: {type: rgb_led, red_pin: "11", green_pin: "10", blue_pin: "9", color: {red: 120, green: 0, blue: 200}}
  - block_id: strip
    block_name: neo_pixel_set_color
    timeline: {function: loop, iteration: 1}
    explanation: "Setting pixel 0 to purple"
    component: {type: neopixel, pin: "6", pixels: [{red: 120, green: 0, blue: 200}, {red: 0, green: 0, blue: 0}]}
  - block_id: lcd
    block_name: lcd_screen_simple_print
    timeline: {function: loop, iteration: 1}
    explanation: "Printing the mood on the lcd"
    component: {type: lcd, sda_pin: A4, scl_pin: A5, rows: ["mood:", "purple"], backlight: true}
  - block_id: servo
    block_name: rotate_servo
    timeline: {function: loop, iteration: 1}
    explanation: "Rotating servo to 90 degrees"
    component: {type: servo, pin: "3", degree: 90}
  - block_id: done
    block_name: loop_end
    timeline: {function: loop, iteration: 1}
    explanation: "The program finished"
`,
}

func GetPreset(name string) (*Script, error) {
	src, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	return Parse([]byte(src))
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
