// Package marketplace provides typed admin clients for the Servio
// marketplace API: categories, bookings, providers, service listings,
// reviews, and provider verification documents.
//
// Each service is a thin translation layer over the authenticated JSON
// pipeline. Credential attachment, renewal on rejection, and the
// single-retry cycle all happen below in the pipeline; these clients only
// know paths, payloads, and domain types.
//
// # Usage
//
//	mkt, err := marketplace.New(client)
//	if err != nil {
//		return err
//	}
//
//	page, err := mkt.Bookings.List(ctx, marketplace.ListParams{
//		PerPage: 50,
//		Filters: map[string]string{"status": "pending"},
//	})
//	if err != nil {
//		return err
//	}
//	for _, b := range page.Items {
//		fmt.Println(b.Reference, b.Status)
//	}
//
// Moderation actions follow the same shape:
//
//	_, err = mkt.Documents.Reject(ctx, docID, "photo is unreadable")
//	if errors.Is(err, marketplace.ErrReasonRequired) {
//		// a rejection must carry a reason
//	}
//
// # Error Handling
//
// Client-side validation failures return package sentinels (ErrInvalidID,
// ErrInvalidStatus, ErrReasonRequired). Backend rejections pass through
// wrapped, so errors.As still reaches the pipeline's *apiclient.APIError
// with the backend's own code and message.
package marketplace
