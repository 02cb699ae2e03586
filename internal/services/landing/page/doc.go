// Package page models the thank-you page variants and the rules that turn a
// request into the text the page shows.
//
// A Variant is the whole configuration of one presentation: copy, the three
// step cards, the call-to-action, and theme tokens. Both shipped variants are
// YAML files embedded in this package; a directory of the same files can
// replace them at startup.
package page
