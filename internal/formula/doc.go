// Package formula validates and evaluates propositional formulas written with
// ASCII connectives over single-letter variables.
//
// Supported connectives, from the tightest binding to the loosest:
//
//	~    negation
//	^    conjunction
//	v    disjunction
//	->   conditional
//	<->  biconditional
//
// Variables are the uppercase letters A to Z. Spaces are insignificant.
//
// A formula is checked by an ordered battery of rules (see Validate). Only a
// valid formula may be evaluated: Evaluate resolves the innermost parenthesized
// groups first, then eliminates operators class by class in precedence order,
// each class left to right, until a single truth value is left.
//
// Every function in this package is a pure function of its arguments and is
// safe for concurrent use.
package formula
