// Package datetime works with calendar dates described by moment-style
// patterns such as "YYYY-MM-DD" or "DD MMMM 'YY".
//
// Patterns are translated into Go reference layouts and all calendar
// arithmetic (leap years, month lengths) is left to the time package. Parsing
// is strict: a value is accepted only when formatting the parsed date with the
// same pattern reproduces the value byte for byte.
//
// Supported tokens:
//
//	YYYY  four digit year       YY    two digit year
//	MMMM  January               MMM   Jan
//	MM    01-12                 M     1-12
//	DD    01-31                 D     1-31
//	dddd  Monday                ddd   Mon
//	HH    00-23                 hh    01-12
//	h     1-12                  mm    00-59
//	m     0-59                  ss    00-59
//	s     0-59                  A     AM/PM
//	a     am/pm
//
// The runes " -/.,:'()" and "T" are literals. Any other letter sequence makes
// a pattern unsupported for parsing; Format copies such sequences verbatim.
//
// # Usage
//
//	if datetime.IsValid("2016-02-29", "YYYY-MM-DD") {
//	    // leap day
//	}
//
//	today, err := datetime.Today("")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(today.Format("DD/MM/YYYY"))
//
//	jan, _ := datetime.January("2016-05-19")
//	fmt.Println(jan.Format("YYYY-MM-DD")) // 2016-01-01
package datetime
