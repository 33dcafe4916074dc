package testutil

// ValidSettingsHCL returns a settings file set that satisfies the default
// schema. Tests mutate or replace pieces to provoke specific violations.
func ValidSettingsHCL() map[string]string {
	return map[string]string{
		"templates.hcl": `
template "houdini_shot_work" {
  fields = ["context", "version", "name"]
}

template "houdini_shot_render" {
  fields = ["context", "version", "SEQ", "aov_name", "name", "width", "height"]
}

template "deadline_batch" {
  fields = ["context"]
}
`,
		"settings.hcl": `
settings "work_file_template" {
  value = "houdini_shot_work"
}

settings "output_render_template" {
  value = "houdini_shot_render"
}

settings "deadline_batch_name" {
  value = "deadline_batch"
}

settings "post_task_script" {
  value = "scripts/denoise_rename.py"
}

render_metadata "camera" {
  type       = "string"
  expression = "ch('camera')"
}

render_metadata "fps" {
  type  = "int"
  value = "24"
  group = "Production"
}
`,
	}
}
