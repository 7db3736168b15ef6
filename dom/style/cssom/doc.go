/*
Package cssom decouples CSS stylesheet handling from document tree
construction.

Overview

Building a resolved SVG node tree needs, per document, an ordered view of
the stylesheet declarations matching each element, nothing more. In order
to de-couple implementations of CSS stylesheets and selector matching from
the construction of the node tree, we introduce small interfaces for
matchers and declaration lists. Clients of the tree builder may provide a
concrete implementation (e.g., see package douceuradapter) or reuse the
matcher pair of an enclosing document.

Having these interfaces imposes a performance hit. However, this
implementation will never trade modularity and clarity for performance.
Clients in need of a production grade SVG engine (where performance is key)
should opt for one of the main browser projects.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package cssom
