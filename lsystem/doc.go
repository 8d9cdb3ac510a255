// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package lsystem expands Lindenmayer-system grammars and interprets the
resulting strings as turtle drawing commands.

A [Grammar] maps single symbols to replacement strings. [Expand] applies
it simultaneously to every symbol of a start string for a number of
levels. An [Interpreter] then walks the expanded string one symbol at a
time, keeping a [State] and a stack of saved states, and issues calls
on a [Drawer] (the drawing surface) and optionally a [Recorder] (which
captures animation frames).

The command symbols are:

	A-Z    move forward by the current length, drawing if there is a pen color and width
	a-z    move forward by the current length without drawing
	_      reset length to its initial value
	^ %    increment / decrement length by the length increment
	* /    multiply / divide length by the length scalar
	+ -    turn left / right by the current angle (mirrored by &)
	&      toggle swapping of + and -
	|      turn by half a circle
	~      reset angle to its initial value
	) (    increment / decrement angle by the angle increment
	=      reset thickness to its initial value
	> <    increment / decrement thickness by the thickness increment
	0-9    set the pen color (or fill color after #) from the palette
	#      make the next color symbol apply to the fill color
	. ,    increment / decrement red of the pen (or fill) color
	: ;    increment / decrement green
	! ?    increment / decrement blue
	{ }    begin / end a filled region
	@      draw a dot with the fill color
	`      toggle swapping of upper and lower case letters
	"      go to the initial position
	'      face the initial heading
	$      clear the stack and erase all drawing
	[ ]    push / pop the full state
	\      stop interpreting

Any other character is ignored, so replacement strings may carry
comments and marker symbols that only take part in rewriting.
*/
package lsystem
