package repository

// ProfileStore bundles the profile-and-sub-record repositories behind the
// single lookup surface the services consume.
type ProfileStore struct {
	*ProfileRepository
	*LifestyleRepository
	*HousingRepository
	*PreferencesRepository
}

func NewProfileStore(db DBTX) *ProfileStore {
	return &ProfileStore{
		ProfileRepository:     NewProfileRepository(db),
		LifestyleRepository:   NewLifestyleRepository(db),
		HousingRepository:     NewHousingRepository(db),
		PreferencesRepository: NewPreferencesRepository(db),
	}
}
