// Package detectors holds one independent, side-effect-free detector per
// rule family. Detectors scan raw configuration text using bounded windows
// anchored on resource headers; they never parse a full syntax tree and never
// share state, so any one of them can fail without affecting the rest.
package detectors
