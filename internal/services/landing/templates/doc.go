// Package templates renders the thank-you page.
//
// Page sections are gomponents node trees; the HTML document shell is a
// templ.Component that renders templ children, so handlers compose both
// through templ.WithChildren.
package templates
