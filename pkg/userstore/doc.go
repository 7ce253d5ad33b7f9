// Package userstore persists the user documents submitted at registration.
//
// A user document links an application user to a push subscription and to the
// financial-institution access keys used by the transaction feed:
//
//	{
//	  "id": "...",
//	  "pk": {"userId": "..."},
//	  "subscription": {"endpoint": "...", "keys": {"auth": "...", "p256dh": "..."}},
//	  "fiKeys": [{"AccessToken": "...", "ItemId": "...", "Cursor": "..."}]
//	}
//
// MongoStore upserts documents into a MongoDB collection keyed by id.
// MemoryStore keeps them in process and is used when no database is configured.
// Documents are write-only from this service's point of view; the registry is
// never rebuilt from them.
package userstore
