// Package ui contains the Bubble Tea program that shows tracked channels and
// their live status. The Model type focuses on message orchestration, while
// dedicated helpers own navigation, input, rendering, and collection updates.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - While the add form is open, key presses go to it (internal/card.AddForm);
//     other messages keep flowing so fetch results land behind the form.
//     Otherwise messages are routed through a typed handler registry so each
//     tea.Msg is handled by a focused function.
//   - Navigation helpers (navigation.go) map keys to cursor moves, reordering,
//     removal, and filter cycling. Search helpers (input.go) keep text entry
//     isolated from the Bubble Tea event loop.
//
// State ownership:
//   - The tracked collection (internal/state.Collection) is the source of
//     truth for records and their order. It is only mutated from Update.
//   - The visible list lives in internal/ui/state.Level, which is rebuilt from
//     the collection after every change and narrowed by the search query.
//   - Card actions (copying the channel link) run through internal/ui/command.
//
// Fetching:
//   - Adding a name queues the profile stage on the Fetcher. Results arrive on
//     its event channel; Update waits for them with waitForBackendEvent and
//     hands each to the dispatcher, which discards results for records that
//     were removed or re-added. A successful profile stage queues the stream
//     stage for the same record generation.
package ui
