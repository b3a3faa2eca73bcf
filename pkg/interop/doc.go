/*
Package interop lets a command-line tool reach into its own process ancestry
on Windows.

# Quick Start

Set a variable in the shell that launched the tool:

	outcome, err := interop.SetParentEnv([]byte("OPAMSWITCH"), []byte("default"))
	if err != nil {
	    log.Fatal(err)
	}
	if outcome == types.OutcomeDeclined {
	    fmt.Println("parent refused the variable")
	}

# Features

  - Environment injection into the parent process
  - 32/64-bit mismatch detection between the tool and its parent
  - Console state: handles, geometry, attributes, code pages, fonts, glyphs
  - Wide/multibyte text conversion
  - String values in the live registry

# Errors

Every failure is a *types.Error. Branch on its kind with errors.Is:

	err := interop.WriteStringValue(types.RootCurrentUser, `Environment`, "OPAMROOT", data)
	switch {
	case errors.Is(err, types.ErrNotFound):
	    // key missing, continue without it
	case err != nil:
	    return err
	}

Nothing is retried internally.

# Platforms

Off Windows every operation validates its arguments and then returns
types.ErrUnsupported, except the text conversions, which fall back to
golang.org/x/text for the code pages it knows.

# Logging

Output is discarded until EnableLogging is called.
*/
package interop
