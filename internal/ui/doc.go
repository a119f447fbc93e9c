// Package ui contains the Bubble Tea program that presents the reference guide.
// The Model is the display surface for the navigation controller: it renders
// whatever text the controller hands it and owns everything about how that
// text is laid out, scrolled and focused.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Key presses are turned into command names and passed to nav.Dispatcher.
//     Commands the dispatcher reports as delegated (arrows, enter, tab, paging)
//     are handled here: they move the sidebar cursor, scroll the content pane
//     or activate the focused sidebar entry.
//   - Mouse clicks on a sidebar row activate that entry through the same
//     dispatcher path. Wheel events scroll whichever pane is under the pointer.
//
// State ownership:
//   - Navigation state belongs to nav.Controller. The Model subscribes to it
//     and rebuilds the sidebar from each nav.View it receives.
//   - Sidebar cursor and scroll offset live in internal/ui/state.Level.
//   - The content pane is a bubbles viewport holding markdown rendered by
//     glamour at the current width. Render and ResetScrollPosition implement
//     nav.Surface.
package ui
