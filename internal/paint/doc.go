// Package paint defines the drawing surface the loading button renders onto.
//
// [Canvas] is deliberately small: rectangles, a text run, a filled arc and a
// text measurement. Toolkit hosts implement it over their own primitives.
// [Recorder] captures the calls as a [DisplayList] that tests compare and
// [Rasterize] turns into pixels without any windowing system.
package paint
