// Package tui is the terminal shell: topic navigation, the visual lab, the
// lesson catalog and the tutor pane in one bubbletea program.
//
// # Key Bindings
//
//	Tab    - Cycle focus (nav, lab, chat)
//	j/k    - Move topic or parameter cursor
//	1-6    - Jump to a topic
//	h/l    - Adjust parameter by one step (H/L by ten)
//	e      - Type a parameter value
//	p      - Apply the next preset
//	r      - Reset parameters
//	t      - Cycle color themes
//	q      - Quit (outside the chat pane)
package tui
