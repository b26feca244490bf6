/*
Package vecto is a small 2D geometry library aimed at creative coding.
Its core is the Vector type, which can be constructed either from cartesian
coordinates or from a polar representation (a magnitude and a heading)
and supports the usual vector arithmetic.

On top of it the package provides a few plain geometry values (Point, Rect,
Line, Polygon) and affine transformations. None of them draws anything,
they are meant to be fed to whatever rendering backend is in use.

Operations which would divide by zero never return NaN or infinite values,
they report an error instead:

	v := vecto.NewVector(3, 4)
	fmt.Println(v.Magnitude()) // 5

	if _, err := v.Div(0); errors.Is(err, vecto.ErrDivisionByZero) {
		// handle the error
	}

The package also ships a command line tool for evaluating vector expressions.
To check the supported flags type:

	$ vecto --help
*/
package vecto
