// Package qualifiednames implements PHL001: namespaced class names may only be used
// to get a class name string.
//
// Code is expected to import classes and refer to them by their short names. The
// rule reports every place where a qualified name is used to reach a class:
//
//	Thing\Things::SOME_CONST    // constant access
//	Thing\Things::$thing        // static property access
//	Thing\Things::get()         // static call
//	new Thing\Thing()           // instantiation
//	class A extends \Thing\B {} // inheritance
//	use Thing\Trait;            // trait inclusion in a class body
//
// and leaves alone:
//
//	Thing\Things::class // yields a string literal, nothing is referenced
//	new $thing          // the class is only known at runtime
//	new class () {}     // there is no name at all
//
// The rule checks syntax only, it does not verify that short names were imported.
package qualifiednames
