package config

// Anvilfile represents the structure of the anvil.yaml configuration file.
type Anvilfile struct {
	Version     string    `yaml:"version"`
	Game        string    `yaml:"game"`
	PatchSet    string    `yaml:"patchSet"`
	MixinCompat bool      `yaml:"mixinCompat"`
	Inputs      InputsDTO `yaml:"inputs"`
	Overlay     string    `yaml:"overlay"`
	Cache       CacheDTO  `yaml:"cache"`
	Tools       ToolsDTO  `yaml:"tools"`
	Workers     int       `yaml:"workers"`
}

// InputsDTO lists the resolved input files of a run.
type InputsDTO struct {
	Client     string   `yaml:"client"`
	Server     string   `yaml:"server"`
	Patches    string   `yaml:"patches"`
	ToolConfig string   `yaml:"toolConfig"`
	Mappings   string   `yaml:"mappings"`
	Universal  string   `yaml:"universal"`
	Userdev    string   `yaml:"userdev"`
	Injection  string   `yaml:"injection"`
	Classpath  []string `yaml:"classpath"`
}

// CacheDTO holds the cache tier roots. Both are optional.
type CacheDTO struct {
	Global  string `yaml:"global"`
	Project string `yaml:"project"`
}

// ToolsDTO holds the external tool argv templates.
type ToolsDTO struct {
	Merge           []string `yaml:"merge"`
	Remap           []string `yaml:"remap"`
	Patch           []string `yaml:"patch"`
	AccessTransform []string `yaml:"accessTransform"`
	Normalize       []string `yaml:"normalize"`
}
