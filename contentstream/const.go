/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package contentstream

// operators is the set of bare keywords a content stream token can
// name as an operator, per ISO 32000-1 §7.8/§7.9.
var operators = map[string]bool{
	"q": true, "Q": true, "cm": true,
	"w": true, "J": true, "j": true, "M": true, "d": true, "ri": true, "i": true, "gs": true,
	"m": true, "l": true, "c": true, "v": true, "y": true, "h": true, "re": true,
	"S": true, "s": true, "f": true, "F": true, "f*": true, "B": true, "B*": true, "b": true, "b*": true, "n": true,
	"W": true, "W*": true,
	"CS": true, "cs": true, "SCN": true, "scn": true, "SC": true, "sc": true,
	"G": true, "g": true, "RG": true, "rg": true, "K": true, "k": true, "sh": true,
	"BT": true, "ET": true,
	"BX": true, "EX": true,
	"MP": true, "DP": true, "BMC": true, "BDC": true, "EMC": true,
	"Tc": true, "Tw": true, "Tz": true, "TL": true, "Tf": true, "Tr": true, "Ts": true,
	"Td": true, "TD": true, "Tm": true, "T*": true, "TJ": true, "Tj": true, "'": true, "\"": true,
	"BI": true, "ID": true, "EI": true,
	"Do": true,
}

// isOperator reports whether keyword names a content-stream operator.
func isOperator(keyword string) bool {
	return operators[keyword]
}
