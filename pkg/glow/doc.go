// Package glow ties the widget tree, input routing, and layout surface
// together into a per-frame runtime context.
//
// Each frame follows the same sequence:
//
//	ctx.Start()             // begin the declaration pass
//	...                     // application declares widgets on ctx.Dom()
//	ctx.Finish()            // prune, purge, deliver focus changes
//	...                     // external layout pass fills ctx.Layout()
//	ctx.HandleEvent(ev)     // once per pending platform event
//	ctx.Settle()            // settle button edge states
//	...                     // external paint pass walks ctx.Dom()
//
// Everything is synchronous and single-threaded; the embedding
// application drives each tick.
package glow
