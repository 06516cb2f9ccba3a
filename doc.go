/*
Package slate implements an interpreter for slate, a small
indentation-sensitive, prototype-based language.

Everything in slate is an object with slots; objects are made by
cloning, and slot lookups delegate along the prototype chain. There are
no operators in the grammar: + and < are ordinary messages, so all
binary sends share one precedence and associate left to right. Blocks
are indentation-delimited and are the arguments of the control-flow
messages ifTrue, ifFalse, and whileTrue.

	counter = Number clone
	counter value = 0

	i = 0
	sum = 0
	i < 10 whileTrue
	    i = i + 1
	    i % 2 == 0 ifTrue
	        continue
	    sum = sum + i
	sum print

Evaluate programs with an Interp, one per session:

	in := slate.NewInterp()
	v, err := in.Eval(src)

The final statement's value comes back boxed; the session's Environment
and Runtime stay inspectable between Eval calls.
*/
package slate
