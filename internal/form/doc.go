// Package form drives the registration form: it reacts to blur, input and
// submit events, runs the field rules and reflects the verdicts on the UI.
//
// The package never talks to a concrete UI or cookie store. Both are
// injected as ports ([UI] and cookies.Jar), so the same [Controller] backs the
// terminal form, the HTTP surface and the in-memory [Surface] used in tests.
package form
