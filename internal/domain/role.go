package domain

// Role identifica o papel de um usuário dentro da força de vendas
type Role int

const (
	RoleAdmin            Role = 1
	RoleSalesDirector    Role = 2
	RoleSupervisor       Role = 3
	RoleDelegate         Role = 4
	RoleMarketingManager Role = 5
)

var roleNames = map[Role]string{
	RoleAdmin:            "admin",
	RoleSalesDirector:    "sales_director",
	RoleSupervisor:       "supervisor",
	RoleDelegate:         "delegate",
	RoleMarketingManager: "marketing_manager",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// Valid retorna verdadeiro se o role pertence ao conjunto fechado de papéis
func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}
