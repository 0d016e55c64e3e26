/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package phase

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// getterPrefix disqualifies a method from the property phase.
	getterPrefix = "get"
	// setterPrefix replaces the first getterPrefix to name the counterpart.
	setterPrefix = "set"
)

// SetterFor derives the counterpart method name of a parameterless method.
//
// The rule operates on the attribute spelling of the name (first rune
// lowercased):
//   - names starting with "get" are rejected;
//   - otherwise the first "get" anywhere in the name becomes "set" and the
//     result is capitalised again.
//
// Conventional Go pairs (Level/SetLevel, GetLevel/SetLevel) never match:
//
//	"GetLevel"    -> rejected
//	"Level"       -> "Level" (itself; no counterpart can exist)
//	"TargetSpeed" -> "TarsetSpeed"
func SetterFor(method string) (string, bool) {
	n := lowerFirst(method)
	if n == "" || strings.HasPrefix(n, getterPrefix) {
		return "", false
	}
	return upperFirst(strings.Replace(n, getterPrefix, setterPrefix, 1)), true
}

// AttributeKey derives the attribute key of a matched getter: its spelling
// with the first three runes dropped and the next one lowercased.
//
//	"TargetSpeed" -> "getSpeed"
//	"Budget"      -> "get"
func AttributeKey(method string) string {
	r := []rune(lowerFirst(method))
	if len(r) <= len(getterPrefix) {
		return ""
	}
	return lowerFirst(string(r[len(getterPrefix):]))
}

func lowerFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[n:]
}

func upperFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}
