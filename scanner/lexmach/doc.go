/*
Package lexmach provides an adapter for lexmachine (https://github.com/timtadh/lexmachine),
together with the two lexers cfgo needs: one for right-hand sides of grammar rules
and one for input sentences.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
