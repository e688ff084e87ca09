/*
Package cfgo is a toolbox for normalizing context-free grammars and for
recognizing sentences with the CYK algorithm.

cfgo reads grammars in a small textual notation

    S -> a S b | ε

and reduces them to a canonical form free of epsilon-, unit- and useless
productions. For parsing, the reduced grammar is converted to Chomsky Normal Form
and handed to a CYK parser, which builds the full parse chart and reconstructs
one derivation tree for accepted sentences. Package structure is as follows:

■ grammar: Package grammar implements the grammar model, a builder and the
textual notation (parsing and printing).

■ normalize: Package normalize implements the transformation stages: epsilon
elimination, unit elimination, useless-symbol removal and CNF conversion.

■ cyk: Package cyk implements the CYK recognizer together with derivation tree
reconstruction.

■ engine: Package engine bundles the stages into the two operations clients
use: Normalize and Parse.

■ scanner: Package scanner defines tokens and tokenizers, with a lexmachine
adapter in sub-package lexmach.

■ sparse: Package sparse implements a sparse matrix of symbol sets, used as
storage for CYK charts.

■ cmd/cfgo: Command cfgo is a command line front end with sub-commands
normalize, parse and repl.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cfgo
