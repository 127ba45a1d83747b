// Package cookies implements the remembered-username persistence on top of
// a minimal cookie store port.
//
// A [Jar] behaves like a browser's document.cookie: Read returns every live
// cookie as one "name=value; name2=value2" string and Write accepts a single
// set-cookie line. [Set] and [Get] are the only operations the form
// controller needs; [MemoryJar] is the in-process implementation used by tests
// and by the terminal form when no database is configured.
package cookies
