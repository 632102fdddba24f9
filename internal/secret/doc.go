// Package secret draws the number the operator has to guess. A value is
// produced once per session and handed to the game loop by value.
package secret
