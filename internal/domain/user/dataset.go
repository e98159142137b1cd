package user

import (
	"fmt"
	"sort"
)

// DefaultDataset is the name of the dataset shipped with the service.
const DefaultDataset = "default"

// datasets holds the authored record sets, keyed by preset name.
var datasets = map[string][]User{
	DefaultDataset: {
		{
			ID:                 1,
			Name:               "John Doe",
			About:              "Software Developer with 5 years of experience",
			Image:              "/images/BeautyPlus_20230422145754740_save.jpg",
			RegistrationNumber: "REG001",
		},
		{
			ID:                 2,
			Name:               "Jane Smith",
			About:              "UI/UX Designer passionate about creating beautiful interfaces",
			Image:              "/images/BeautyPlus_20230426145857290_save.png",
			RegistrationNumber: "REG002",
		},
		{
			ID:                 3,
			Name:               "Mike Johnson",
			About:              "Full Stack Developer specializing in MERN stack",
			Image:              "/images/BeautyPlus_20230507221313777_save.jpg",
			RegistrationNumber: "REG003",
		},
		{
			ID:                 4,
			Name:               "Sarah Wilson",
			About:              "Data Scientist with expertise in machine learning",
			Image:              "/images/BeautyPlus_20230522203038173_save.jpg",
			RegistrationNumber: "REG004",
		},
		{
			ID:                 5,
			Name:               "David Brown",
			About:              "DevOps Engineer with cloud computing experience",
			Image:              "/images/BeautyPlus_20230523182236748_save.jpg",
			RegistrationNumber: "REG005",
		},
	},
}

// Dataset returns a copy of the named dataset preset.
func Dataset(name string) ([]User, error) {
	records, ok := datasets[name]
	if !ok {
		return nil, fmt.Errorf("unknown dataset %q (available: %v)", name, DatasetNames())
	}

	out := make([]User, len(records))
	copy(out, records)
	return out, nil
}

// DatasetNames returns the registered preset names in sorted order.
func DatasetNames() []string {
	names := make([]string, 0, len(datasets))
	for name := range datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
