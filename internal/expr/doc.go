// Package expr tokenizes and parses R expressions and interval literals into
// an immutable tree of Node values that model encoders turn into derived
// field logic.
package expr
