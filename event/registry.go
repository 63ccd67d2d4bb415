package event

import (
	"strconv"
	"strings"
)

var (
	typeToName = map[Type]string{
		TypeWindowClose:         "WindowClose",
		TypeWindowResize:        "WindowResize",
		TypeWindowFocusGained:   "WindowFocusGained",
		TypeWindowFocusLost:     "WindowFocusLost",
		TypeWindowMoved:         "WindowMoved",
		TypeWindowScaleChanged:  "WindowScaleChanged",
		TypeAppTick:             "AppTick",
		TypeAppUpdate:           "AppUpdate",
		TypeAppRender:           "AppRender",
		TypeKeyPressed:          "KeyPressed",
		TypeKeyReleased:         "KeyReleased",
		TypeKeyTyped:            "KeyTyped",
		TypeMouseButtonPressed:  "MouseButtonPressed",
		TypeMouseButtonReleased: "MouseButtonReleased",
		TypeMouseMoved:          "MouseMoved",
		TypeMouseScrolled:       "MouseScrolled",
	}
	nameToType = make(map[string]Type, len(typeToName))
)

func init() {
	for t, name := range typeToName {
		nameToType[strings.ToLower(name)] = t
	}
}

// String returns the registered type name
func (t Type) String() string {
	if name, ok := typeToName[t]; ok {
		return name
	}
	return "Type(" + strconv.Itoa(int(t)) + ")"
}

// TypeByName returns the Type for a registered name, case-insensitive
func TypeByName(name string) (Type, bool) {
	t, ok := nameToType[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// Types returns every registered type in declaration order
func Types() []Type {
	types := make([]Type, 0, len(typeToName))
	for t := TypeWindowClose; t <= TypeMouseScrolled; t++ {
		types = append(types, t)
	}
	return types
}
