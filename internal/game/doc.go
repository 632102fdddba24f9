// Package game runs one guessing session as an explicit state machine:
//
//	Prompting -> AwaitingInput -> Parsing -> Comparing -> Prompting
//	                                 |            |
//	                                 +-> Prompting +-> Terminated
//
// A line that does not parse is dropped without any output and the loop
// prompts again. Only a correct guess reaches Terminated; a failure to read
// input or to write output ends the session with an error.
package game
