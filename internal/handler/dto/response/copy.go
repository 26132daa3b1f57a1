package response

import "github.com/jinzhu/copier"

// mustCopy maps a read view onto its response DTO. Both sides are declared in
// this module with matching field names, so a failure is a programming error.
// Values are assigned, not deep-copied: calendar.Date has no exported fields.
func mustCopy(to, from any) {
	if err := copier.Copy(to, from); err != nil {
		panic(err)
	}
}
