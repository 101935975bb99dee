package seeder

func Defaults() []Seeder {
	return []Seeder{
		JobsSeeder{},
		StudentsSeeder{},
		ApplicationsSeeder{},
	}
}
