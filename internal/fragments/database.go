package fragments

import (
	"strings"

	"github.com/fastkit/cli/internal/database"
	"github.com/fastkit/cli/internal/placeholder"
)

// DefaultProjectName names the database when --project-name is not given.
const DefaultProjectName = "app"

// Database builds the SQLAlchemy fragment: database.py, models.py,
// database_requirements.txt and init_db.py. Unknown kinds use sqlite values.
func Database(kind database.Kind, projectName string) *Fragment {
	if projectName == "" {
		projectName = DefaultProjectName
	}

	// substitution is single pass, so the URL carries the project name before insertion
	url := placeholder.Render(kind.URLTemplate(), placeholder.Table{placeholder.ProjectName: projectName})
	requirements := kind.Requirements()

	return &Fragment{
		Name: "database",
		Files: []File{
			{Name: "database.py", Template: mustAsset("database.py.tmpl")},
			{Name: "models.py", Template: mustAsset("models.py.tmpl")},
			{Name: "database_requirements.txt", Template: requirements},
			{Name: "init_db.py", Template: mustAsset("init_db.py.tmpl")},
		},
		Table: placeholder.Table{
			"{{DATABASE_URL}}":      url,
			"{{CONNECT_ARGS}}":      kind.ConnectArgs(),
			placeholder.ProjectName: projectName,
		},
		Details: [][2]string{
			{"Database type", string(kind)},
			{"Database URL", url},
		},
		NextSteps: []string{
			"1. Install dependencies:",
			"   pip install " + strings.Join(strings.Fields(requirements), " "),
			"2. Update database URL in database.py with your credentials",
			"3. Define your models in models.py",
			"4. Initialize database:",
			"   python init_db.py",
			"5. Use the database in your routes:",
			"   from database import get_db",
			"   from sqlalchemy.orm import Session",
			"   @app.get('/items')",
			"   def get_items(db: Session = Depends(get_db)):",
			"       return db.query(Item).all()",
		},
	}
}
