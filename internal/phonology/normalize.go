package phonology

import "unicode"

// NormalizeUOHorn rewrites the two runes at positions i, i+1 of nucleus in
// place so that a ư immediately followed by a plain o is promoted to ươ
// (spec.md §4.2.3: "ưo" is never a valid Vietnamese sequence). It also
// handles the inverse "uơ" (plain u followed by horn-o), rewriting it to
// the ươ compound, since that configuration is equally disallowed and the
// spec mandates defaulting to the compound result whenever horn has been
// applied to either half of a uo pair (§9 Open Questions).
//
// Returns the (possibly rewritten) nucleus and whether a rewrite happened.
func NormalizeUOHorn(nucleus []rune) ([]rune, bool) {
	for i := 0; i+1 < len(nucleus); i++ {
		a, b := nucleus[i], nucleus[i+1]
		lowerA, lowerB := unicode.ToLower(a), unicode.ToLower(b)

		if lowerA == 'ư' && lowerB == 'o' {
			nucleus[i+1] = hornedO(unicode.IsUpper(b))
			return nucleus, true
		}
		if lowerA == 'u' && lowerB == 'ơ' {
			nucleus[i] = hornedU(unicode.IsUpper(a))
			return nucleus, true
		}
	}
	return nucleus, false
}

func hornedO(caps bool) rune {
	if caps {
		return 'Ơ'
	}
	return 'ơ'
}

func hornedU(caps bool) rune {
	if caps {
		return 'Ư'
	}
	return 'ư'
}

// HornTargets implements spec.md §4.2.4: given a nucleus and the index of
// the vowel the user is directly applying horn to, return the set of
// nucleus indices that must carry horn for the result to be a valid
// Vietnamese vowel shape. In a closed or open "uo" compound, both vowels
// receive horn; for a standalone u or o, only that index does.
func HornTargets(nucleus []rune, target int) []int {
	if target < 0 || target >= len(nucleus) {
		return nil
	}
	lower := unicode.ToLower(nucleus[target])
	if lower != 'u' && lower != 'o' {
		return []int{target}
	}
	// Look for the adjacent half of a uo compound.
	if lower == 'u' && target+1 < len(nucleus) && unicode.ToLower(nucleus[target+1]) == 'o' {
		return []int{target, target + 1}
	}
	if lower == 'o' && target-1 >= 0 && unicode.ToLower(nucleus[target-1]) == 'u' {
		return []int{target - 1, target}
	}
	return []int{target}
}
