// SPDX-License-Identifier: GPL-3.0-only

package phoneinfo

import (
	"maps"
	"strconv"

	"github.com/nyaruka/phonenumbers"
)

func typeCode(t phonenumbers.PhoneNumberType) string {
	return strconv.Itoa(int(t))
}

// typeNames maps stringified PhoneNumberType codes to their names. Keys are
// derived from the library constants so the table cannot drift from the codes
// reported in Info.TypeCode.
var typeNames = map[string]string{
	typeCode(phonenumbers.FIXED_LINE):           "FIXED_LINE",
	typeCode(phonenumbers.MOBILE):               "MOBILE",
	typeCode(phonenumbers.FIXED_LINE_OR_MOBILE): "FIXED_LINE_OR_MOBILE",
	typeCode(phonenumbers.TOLL_FREE):            "TOLL_FREE",
	typeCode(phonenumbers.PREMIUM_RATE):         "PREMIUM_RATE",
	typeCode(phonenumbers.SHARED_COST):          "SHARED_COST",
	typeCode(phonenumbers.VOIP):                 "VOIP",
	typeCode(phonenumbers.PERSONAL_NUMBER):      "PERSONAL_NUMBER",
	typeCode(phonenumbers.PAGER):                "PAGER",
	typeCode(phonenumbers.UAN):                  "UAN",
	typeCode(phonenumbers.VOICEMAIL):            "VOICEMAIL",
	typeCode(phonenumbers.UNKNOWN):              "UNKNOWN",
}

// TypeCodes returns the mapping from numeric type codes to type names, as
// carried by the Info.TypeCode field. The returned map is a copy.
func TypeCodes() map[string]string {
	return maps.Clone(typeNames)
}
