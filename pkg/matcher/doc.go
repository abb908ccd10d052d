// Package matcher provides the matcher protocol shared by every
// assertion in this module: a Matcher renders a Result holding a
// pass/fail flag and two pre-rendered messages, Should and
// ShouldNot turn a Result into a fatal test failure, and All, Any
// and Not compose matchers without knowing their concrete types.
package matcher
