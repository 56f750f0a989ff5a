// Package tutor runs the chat pane of the conics lab.
//
// A [Session] owns a transcript of role-tagged [Message] values and a
// two-state machine ([StateIdle], [StateSending]). Each user question is
// sent to a [Generator] as a single prompt: a system instruction built from
// the current topic's catalog entry, the fixed separator, then the raw
// question. Calls carry no earlier turns.
//
// Failures never escape a session. A missing credential or a failed call
// becomes one error-flagged assistant message and the session returns to
// idle, ready for a retry.
//
// The split between [Session.Begin] and [Session.Complete] lets an event
// loop such as bubbletea run the call off the UI goroutine; [Session.Submit]
// does all three steps inline.
package tutor
