package api

import (
	"fmt"
	"net/http"

	"github.com/phrazzld/apiary-api/internal/api/shared"
)

// respondRecordsCreated writes the create response of a feeding, harvest or
// treatment. A fan-out request answers with every record and its count.
func respondRecordsCreated[T any](
	w http.ResponseWriter,
	r *http.Request,
	resource string,
	applyToAllHives bool,
	records []*T,
) {
	if !applyToAllHives && len(records) == 1 {
		shared.RespondWithSuccess(w, r, http.StatusCreated, resource+" created successfully", records[0])
		return
	}
	message := fmt.Sprintf("%s records created for %d hives", resource, len(records))
	shared.RespondWithList(w, r, http.StatusCreated, message, records, len(records))
}
