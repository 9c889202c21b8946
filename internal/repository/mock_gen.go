// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./repository.go -destination=../mocks/mock_transaction.go -package=mocks Transaction
//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./organization.go -destination=../mocks/mock_organization_repository.go -package=mocks OrganizationRepositoryIface
//go:generate mockgen -source=./membership.go -destination=../mocks/mock_membership_repository.go -package=mocks MembershipRepositoryIface
//go:generate mockgen -source=./class.go -destination=../mocks/mock_class_repository.go -package=mocks ClassRepositoryIface
//go:generate mockgen -source=./signup.go -destination=../mocks/mock_signup_repository.go -package=mocks SignupRepositoryIface
//go:generate mockgen -source=./flight.go -destination=../mocks/mock_flight_repository.go -package=mocks FlightRepositoryIface
//go:generate mockgen -source=./checklist.go -destination=../mocks/mock_checklist_repository.go -package=mocks ChecklistRepositoryIface
//go:generate mockgen -source=./license.go -destination=../mocks/mock_license_repository.go -package=mocks LicenseRepositoryIface
//go:generate mockgen -source=./inventory.go -destination=../mocks/mock_inventory_repository.go -package=mocks InventoryRepositoryIface
