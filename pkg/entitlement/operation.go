package entitlement

// Operation is a mutating action gated by quota checks. The set is closed;
// constructors below build the supported operations.
type Operation interface {
	operation()
}

type opCreateListing struct{}
type opAddImages struct{ count int64 }
type opAddAgent struct{}
type opPromoteToSuperAgent struct{}
type opFeatureListing struct{}

func (opCreateListing) operation()       {}
func (opAddImages) operation()           {}
func (opAddAgent) operation()            {}
func (opPromoteToSuperAgent) operation() {}
func (opFeatureListing) operation()      {}

// CreateListing gates publishing one more listing.
func CreateListing() Operation { return opCreateListing{} }

// AddImages gates uploading n images to one listing. The per-listing and
// the account-wide ceiling are both checked.
func AddImages(n int64) Operation { return opAddImages{count: n} }

// AddAgent gates occupying one more agent seat.
func AddAgent() Operation { return opAddAgent{} }

// PromoteToSuperAgent gates occupying one more super-agent seat.
func PromoteToSuperAgent() Operation { return opPromoteToSuperAgent{} }

// FeatureListing gates marking one more listing as featured within the
// tier's allowance.
func FeatureListing() Operation { return opFeatureListing{} }
