package types

import "strings"

// ControlType represents a single control action (e.g., Up, Down, Enter, Esc) with an associated action
// Name: human-readable name, Key: key binding, Action: function to execute
type ControlType struct {
	Name   string
	Key    string
	Action func() bool // returns true if the key was handled
}

// ControlSet represents a set of controls for a view/state
// Each ControlSet can be customized per view/state
type ControlSet struct {
	Controls []ControlType
}

// Handle runs the first control bound to key.
func (cs ControlSet) Handle(key string) bool {
	for _, c := range cs.Controls {
		if c.Key == key && c.Action != nil && c.Action() {
			return true
		}
	}
	return false
}

// Dispatch offers key to each set in order; the first set that handles it wins.
// The first set is the local one, later sets are global or context-specific.
func Dispatch(sets []ControlSet, key string) bool {
	for _, cs := range sets {
		if cs.Handle(key) {
			return true
		}
	}
	return false
}

// ControlInfo represents the outline of controls for a view (displayed in the footer)
type ControlInfo struct {
	Lines []string // e.g., "↑↓ navigate", "Enter select", "Esc back"
}

// Describe builds the footer outline from control sets, skipping unnamed controls.
func Describe(sets []ControlSet) ControlInfo {
	var info ControlInfo
	seen := map[string]bool{}
	for _, cs := range sets {
		for _, c := range cs.Controls {
			if c.Name == "" || seen[c.Key] {
				continue
			}
			seen[c.Key] = true
			info.Lines = append(info.Lines, keyLabel(c.Key)+" "+c.Name)
		}
	}
	return info
}

// String joins the outline on one line.
func (ci ControlInfo) String() string {
	return strings.Join(ci.Lines, " • ")
}

func keyLabel(key string) string {
	switch key {
	case "up":
		return "↑"
	case "down":
		return "↓"
	case "left":
		return "←"
	case "right":
		return "→"
	case "enter":
		return "Enter"
	case "esc":
		return "Esc"
	case "tab":
		return "Tab"
	}
	if rest, ok := strings.CutPrefix(key, "ctrl+"); ok {
		return "Ctrl+" + strings.ToUpper(rest)
	}
	return key
}

// MenuUp moves a wrap-around selection one entry up.
func MenuUp(selected *int, n int) func() bool {
	return func() bool {
		if n <= 0 {
			return false
		}
		if *selected > 0 {
			*selected--
		} else {
			*selected = n - 1 // wrap around
		}
		return true
	}
}

// MenuDown moves a wrap-around selection one entry down.
func MenuDown(selected *int, n int) func() bool {
	return func() bool {
		if n <= 0 {
			return false
		}
		if *selected < n-1 {
			*selected++
		} else {
			*selected = 0 // wrap around
		}
		return true
	}
}
