package handlers

// collectionInvalidator is the slice of the live hub the write paths need:
// after a successful write the changed collection is re-delivered to every
// open subscription.
type collectionInvalidator interface {
	Invalidate(collection string)
}
