// Package icons maps Lucide icon names to their outline SVG bodies.
//
// Pages reference icons by Lucide name; rendering code wraps the body in an
// <svg> element sized and stroked for the call site.
package icons
