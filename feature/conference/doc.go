// Package conference runs asset audits.
//
// A conference is one audit of a target location. It is created by its owner, collects
// participants and scanned items while CREATED, and is closed by Finalize, after which it
// is read-only. Finalizing builds a report of verified, missing and foreign assets and
// hands it to the notification sink.
//
// # Invariants
//
//   - An item is stored at most once per (conference, code, user). The unique index on
//     conference_items enforces this, so concurrent duplicates produce one row and a
//     conflict.
//   - Finalize is a conditional update from CREATED to FINALIZED. Exactly one concurrent
//     caller wins; the others get an invalid state error and do not notify.
//   - Items and participants are only accepted while the conference row, locked inside
//     the insert transaction, is still CREATED.
//   - The owner is always a participant. It is derived from creator_id and never stored
//     as a participation row.
//   - Notification happens after the transition is committed. Its failure is logged and
//     returned in the finalize result; the conference stays FINALIZED.
//
// # HTTP Endpoints
//
//   - POST /conferences : Create a conference.
//   - GET /conferences/:id : Conference with participants and items.
//   - POST /conferences/:id/participants : Add a participant by e-mail or badge.
//   - POST /conferences/:id/items : Submit a scanned item.
//   - GET /conferences/:id/status : Current counts.
//   - POST /conferences/:id/finalize : Close the conference and send the report.
//   - GET /users/:id/conferences : Conferences a user owns or takes part in.
package conference
